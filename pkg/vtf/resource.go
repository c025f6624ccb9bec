package vtf

import "encoding/binary"

// Resource dictionary tags defined by version 7.3 containers.
var (
	TagThumbnail = [3]byte{0x01, 0x00, 0x00}
	TagHighRes   = [3]byte{0x30, 0x00, 0x00}
	TagCRC       = [3]byte{'C', 'R', 'C'}
	TagLOD       = [3]byte{'L', 'O', 'D'}
	TagFlagsEx   = [3]byte{'T', 'S', 'O'}
	TagKeyValues = [3]byte{'K', 'V', 'D'}
)

// ResourceFlagNoData marks entries whose Offset field holds an inline payload
// rather than a file offset.
const ResourceFlagNoData = 0x02

// Resource is one entry of the 7.3+ resource dictionary.
type Resource struct {
	Tag    [3]byte
	Flags  uint8
	Offset uint32
}

const (
	resourceDictOffset = 80
	resourceEntrySize  = 8
)

// parseResources walks the resource dictionary that follows the fixed header
// in 7.3+ containers. Entries past the declared header size or the end of the
// buffer are dropped rather than treated as fatal.
func parseResources(data []byte, count, headerSize uint32) []Resource {
	resources := make([]Resource, 0, count)
	for i := uint32(0); i < count; i++ {
		off := resourceDictOffset + int(i)*resourceEntrySize
		if off+resourceEntrySize > len(data) || uint32(off+resourceEntrySize) > headerSize {
			break
		}
		var r Resource
		copy(r.Tag[:], data[off:off+3])
		r.Flags = data[off+3]
		r.Offset = binary.LittleEndian.Uint32(data[off+4 : off+8])
		resources = append(resources, r)
	}
	return resources
}
