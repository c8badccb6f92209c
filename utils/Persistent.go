package utils

import (
	"flag"
	"fmt"
	"io"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

var LogPersistent = base.NewLogCategory("Persistent")

/***************************************
 * Persistent variables
 ***************************************/

type PersistentVar interface {
	fmt.Stringer
	flag.Value
}

type BoolVar = base.InheritableBool
type StringVar = base.InheritableString

type PersistentData interface {
	LoadData(object string, property string, value PersistentVar) error
	StoreData(object string, property string, value PersistentVar)
}

type persistentData struct {
	Data map[string]map[string]string
}

func NewPersistentMap() *persistentData {
	return &persistentData{
		Data: make(map[string]map[string]string),
	}
}
func (pmp *persistentData) Len() (result int) {
	for _, vars := range pmp.Data {
		result += len(vars)
	}
	return
}
func (pmp *persistentData) LoadData(name string, property string, dst PersistentVar) error {
	object, ok := pmp.Data[name]
	if !ok {
		return fmt.Errorf("object %q not found", name)
	}
	value, ok := object[property]
	if !ok {
		return fmt.Errorf("object %q has no property %q", name, property)
	}
	base.LogDebug(LogPersistent, "load object property %s.%s = %v", name, property, value)
	return dst.Set(value)
}
func (pmp *persistentData) StoreData(name string, property string, src PersistentVar) {
	base.LogDebug(LogPersistent, "store in %s.%s = %v", name, property, src)
	object, ok := pmp.Data[name]
	if !ok {
		object = make(map[string]string)
		pmp.Data[name] = object
	}
	object[property] = src.String()
}
func (pmp *persistentData) Serialize(dst io.Writer) error {
	if err := base.JsonSerialize(&pmp.Data, dst, base.OptionJsonPrettyPrint(true)); err != nil {
		return fmt.Errorf("failed to serialize config: %v", err)
	}
	base.LogDebug(LogPersistent, "saved %d vars from config to disk", pmp.Len())
	return nil
}
func (pmp *persistentData) Deserialize(src io.Reader) error {
	if err := base.JsonDeserialize(&pmp.Data, src); err != nil {
		return fmt.Errorf("failed to deserialize config: %v", err)
	}
	base.LogVerbose(LogPersistent, "loaded %d vars from disk to config", pmp.Len())
	return nil
}
