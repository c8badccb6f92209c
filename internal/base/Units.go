package base

import (
	"fmt"
)

/***************************************
 * SizeInBytes
 ***************************************/

type SizeInBytes uint64

const (
	KiB SizeInBytes = 1024
	MiB             = KiB * 1024
	GiB             = MiB * 1024
)

func (x *SizeInBytes) Add(n uint64)    { *x += SizeInBytes(n) }
func (x *SizeInBytes) Assign(n uint64) { *x = SizeInBytes(n) }
func (x SizeInBytes) Get() uint64      { return uint64(x) }

func (x SizeInBytes) String() string {
	switch {
	case x >= GiB:
		return fmt.Sprintf("%.2f GiB", float64(x)/float64(GiB))
	case x >= MiB:
		return fmt.Sprintf("%.2f MiB", float64(x)/float64(MiB))
	case x >= KiB:
		return fmt.Sprintf("%.2f KiB", float64(x)/float64(KiB))
	default:
		return fmt.Sprintf("%d b", uint64(x))
	}
}
