package base

import (
	"strings"
)

/***************************************
 * InheritableString
 ***************************************/

// Inheritable variables distinguish "not set, inherit the default" from an
// explicit user choice, so persistent config only records the latter.

type InheritableString string

const INHERIT_STRING InheritableString = ""

func (x InheritableString) Get() string         { return string(x) }
func (x InheritableString) IsInheritable() bool { return len(x) == 0 }
func (x InheritableString) String() string {
	if x.IsInheritable() {
		return "INHERIT"
	}
	return string(x)
}
func (x *InheritableString) Set(in string) error {
	if strings.EqualFold(in, "INHERIT") {
		*x = INHERIT_STRING
	} else {
		*x = InheritableString(in)
	}
	return nil
}
func (x InheritableString) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
func (x *InheritableString) UnmarshalText(data []byte) error {
	return x.Set(string(data))
}

/***************************************
 * InheritableBool
 ***************************************/

type InheritableBool int32

const (
	INHERITABLE_INHERIT InheritableBool = iota
	INHERITABLE_FALSE
	INHERITABLE_TRUE
)

func MakeBoolVar(enabled bool) InheritableBool {
	if enabled {
		return INHERITABLE_TRUE
	}
	return INHERITABLE_FALSE
}

func (x InheritableBool) Get() bool            { return x == INHERITABLE_TRUE }
func (x InheritableBool) IsInheritable() bool  { return x == INHERITABLE_INHERIT }
func (x *InheritableBool) Enable()             { *x = INHERITABLE_TRUE }
func (x *InheritableBool) Disable()            { *x = INHERITABLE_FALSE }
func (x InheritableBool) String() string {
	switch x {
	case INHERITABLE_INHERIT:
		return "INHERIT"
	case INHERITABLE_FALSE:
		return "FALSE"
	case INHERITABLE_TRUE:
		return "TRUE"
	default:
		UnexpectedValue(x)
		return ""
	}
}
func (x *InheritableBool) Set(in string) (err error) {
	switch strings.ToUpper(in) {
	case "INHERIT":
		*x = INHERITABLE_INHERIT
	case "FALSE", "0", "N", "NO", "OFF":
		*x = INHERITABLE_FALSE
	case "TRUE", "1", "Y", "YES", "ON", "": // bare "-Flag" means enable
		*x = INHERITABLE_TRUE
	default:
		err = MakeUnexpectedValueError(x, in)
	}
	return err
}
func (x InheritableBool) IsBoolFlag() bool { return true }
func (x InheritableBool) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
func (x *InheritableBool) UnmarshalText(data []byte) error {
	return x.Set(string(data))
}
