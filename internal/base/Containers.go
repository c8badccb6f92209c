package base

import (
	"strings"

	"golang.org/x/exp/constraints"
)

/***************************************
 * Generic container helpers
 ***************************************/

func IndexOf[T comparable](x T, list ...T) (int, bool) {
	for i, it := range list {
		if it == x {
			return i, true
		}
	}
	return len(list), false
}

func Contains[T comparable](list []T, x ...T) bool {
	for _, it := range x {
		if _, ok := IndexOf(it, list...); !ok {
			return false
		}
	}
	return true
}

func Map[T, R any](fn func(T) R, list ...T) []R {
	result := make([]R, len(list))
	for i, it := range list {
		result[i] = fn(it)
	}
	return result
}

func CopySlice[T any](src ...T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

/***************************************
 * StringSet
 ***************************************/

type StringSet []string

func NewStringSet(x ...string) StringSet {
	return CopySlice(x...)
}

func (set StringSet) Len() int { return len(set) }
func (set StringSet) At(i int) string {
	return set[i]
}
func (set StringSet) Slice() []string {
	return set
}
func (set StringSet) Range(each func(string) error) error {
	for _, it := range set {
		if err := each(it); err != nil {
			return err
		}
	}
	return nil
}
func (set StringSet) IndexOf(it string) (int, bool) {
	return IndexOf(it, set...)
}
func (set StringSet) Contains(it ...string) bool {
	return Contains(set, it...)
}
func (set StringSet) Any(it ...string) bool {
	for _, x := range it {
		if _, ok := set.IndexOf(x); ok {
			return true
		}
	}
	return false
}
func (set *StringSet) Append(it ...string) *StringSet {
	*set = append(*set, it...)
	return set
}
func (set *StringSet) AppendUniq(it ...string) *StringSet {
	for _, x := range it {
		if _, ok := set.IndexOf(x); !ok {
			*set = append(*set, x)
		}
	}
	return set
}
func (set *StringSet) Prepend(it ...string) *StringSet {
	*set = append(CopySlice(it...), *set...)
	return set
}
func (set *StringSet) Remove(it ...string) *StringSet {
	for _, x := range it {
		if i, ok := set.IndexOf(x); ok {
			*set = append((*set)[:i], (*set)[i+1:]...)
		}
	}
	return set
}
func (set *StringSet) Clear() *StringSet {
	*set = (*set)[:0]
	return set
}
func (set StringSet) Equals(other StringSet) bool {
	if len(set) != len(other) {
		return false
	}
	for i, it := range set {
		if other[i] != it {
			return false
		}
	}
	return true
}
func (set StringSet) Join(sep string) string {
	return strings.Join(set, sep)
}
func (set StringSet) String() string {
	return set.Join(" ")
}
