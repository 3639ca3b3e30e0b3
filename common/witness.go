package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// CheckWitness checks witness of the passed caller. It panics with the given
// message on fail.
func CheckWitness(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
