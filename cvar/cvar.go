// SPDX-License-Identifier: GPL-2.0-or-later

// Package cvar is a registry of named tunables. The string value is
// the truth, the float value is derived from it.
package cvar

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"goball/conlog"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	// cvar flags bitfield
	NONE    flag = 0
	ARCHIVE flag = 1      // written back by config.Save
	NOTIFY  flag = 1 << 1 // changes are logged
	ROM     flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	notify   bool
	rom      bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
	id           int
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) Notify() bool {
	return cv.notify
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	if cv.notify && cv.stringValue != s {
		conlog.Printf("\"%s\" changed to \"%s\"\n", cv.name, s)
	}
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Default() string {
	return cv.defaultValue
}

func (cv *Cvar) ID() int {
	return cv.id
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		v := strconv.FormatInt(int64(value), 10)
		cv.SetByString(v)
	} else {
		v := strconv.FormatFloat(float64(value), 'f', -1, 32)
		cv.SetByString(v)
	}
}

func (cv *Cvar) Toggle() {
	if cv.String() == "1" {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0"
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[name]
	return cv, ok
}

func GetByID(id int) (*Cvar, error) {
	if id < 0 || id >= len(cvarArray) {
		return nil, errors.Errorf("id %d out of bounds", id)
	}
	return cvarArray[id], nil
}

// Set assigns value to the registered cvar name.
func Set(name, value string) error {
	cv, ok := Get(name)
	if !ok {
		return errors.Errorf("unknown cvar %q", name)
	}
	if cv.rom {
		return errors.Errorf("cvar %q is read only", name)
	}
	if _, err := strconv.ParseFloat(value, 32); err != nil && numeric(cv.defaultValue) {
		return errors.Wrapf(err, "cvar %q", name)
	}
	cv.SetByString(value)
	return nil
}

func numeric(s string) bool {
	_, err := strconv.ParseFloat(s, 32)
	return err == nil
}

func ResetAll() {
	for _, cv := range All() {
		cv.Reset()
	}
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.SetByString(value)
	pos := len(cvarArray)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	cv.id = pos
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := cvarByName[name]; ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}

	cv := create(name, value)

	if flags&ARCHIVE != 0 {
		cv.archive = true
	}
	if flags&NOTIFY != 0 {
		cv.notify = true
	}
	if flags&ROM != 0 {
		cv.rom = true
	}

	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		panic(err)
	}
	return cv
}

// List writes the cvars sorted by name, one per line, followed by
// their count.
func List(w io.Writer) {
	cvars := append([]*Cvar(nil), All()...)
	sort.Slice(cvars, func(i, j int) bool {
		return cvars[i].Name() < cvars[j].Name()
	})
	for _, v := range cvars {
		fmt.Fprintf(w, "%s%s %s \"%s\"\n",
			func() string {
				if v.Archive() {
					return "*"
				}
				return " "
			}(),
			func() string {
				if v.Notify() {
					return "s"
				}
				return " "
			}(),
			v.Name(),
			v.String())
	}
	fmt.Fprintf(w, "%v cvars\n", len(cvars))
}
