package fswatcher

import (
	"path/filepath"
	"strings"
)

type Watcher interface {
	Add(name string) error
	Remove(name string) error
	Events() <-chan interface{} // *Event or error
	OpMask() *Op
	Close() error
}

//----------

type Event struct {
	Op      Op
	Name    string
	SubName string // set on create: Name is the directory
}

func (ev *Event) JoinNames() string {
	return filepath.Join(ev.Name, ev.SubName)
}

//----------

const (
	Attrib Op = 1 << iota
	Create
	Modify // write, truncate
	Remove
	Rename

	AllOps Op = Attrib | Create | Modify | Remove | Rename
)

var opNames = []string{"attrib", "create", "modify", "remove", "rename"}

type Op uint16

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }
func (op *Op) Add(op2 Op)        { *op |= op2 }
func (op *Op) Remove(op2 Op)     { *op &^= op2 }

func (op Op) String() string {
	u := []string{}
	for i, name := range opNames {
		if op.HasAny(Op(1) << i) {
			u = append(u, name)
		}
	}
	return strings.Join(u, "|")
}
