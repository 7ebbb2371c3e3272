//go:build idspdebug

package pll

import "fmt"

func checkShifts(shiftFrequency, shiftPhase uint) {
	if !validShift(shiftFrequency) || !validShift(shiftPhase) {
		panic(fmt.Sprintf("pll: shifts (%d, %d) outside [%d, %d]",
			shiftFrequency, shiftPhase, MinShift, MaxShift))
	}
}
