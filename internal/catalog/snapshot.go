package catalog

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
)

// time.Time has no exported fields, so copier would zero it on a deep copy
// unless it is copied as a plain value.
var snapshotOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				return src, nil
			},
		},
	},
}

// Copy returns a deep copy of c that shares no slices with it.
func (c *Catalog) Copy() *Catalog {
	var snapshot data

	err := copier.CopyWithOption(&snapshot, &c.data, snapshotOption)
	if err != nil {
		panic(fmt.Sprintf("catalog: deep copy failed: %v", err))
	}

	return &Catalog{data: snapshot}
}
