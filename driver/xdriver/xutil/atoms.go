package xutil

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Tags can be used with: `loadAtoms:"atomname"`.
// "st" should be a pointer to a struct with xproto.Atom fields.
// "onlyIfExists" asks the x server to assign a value only if the atom exists.
func LoadAtoms(conn *xgb.Conn, st interface{}, onlyIfExists bool) error {
	// request all before reading the replies
	val := reflect.Indirect(reflect.ValueOf(st))
	typ := val.Type()
	cookies := make([]xproto.InternAtomCookie, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		name := sf.Name
		if tag := sf.Tag.Get("loadAtoms"); tag != "" {
			name = tag
		}
		cookies[i] = xproto.InternAtom(conn, onlyIfExists, uint16(len(name)), name)
	}
	for i, c := range cookies {
		reply, err := c.Reply()
		if err != nil {
			return err
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}
