// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

// Status is the terminal condition of one transported state. Ordinary
// physical outcomes are statuses, not errors
type Status int

const (
	StatusExited Status = iota
	StatusAbsorbed
	StatusEnergyMin
	StatusEnergyMax
	StatusLengthMax
	StatusStepLimit
	StatusError
)

func (o Status) String() string {
	switch o {
	case StatusExited:
		return "Exited"
	case StatusAbsorbed:
		return "Absorbed"
	case StatusEnergyMin:
		return "EnergyMin"
	case StatusEnergyMax:
		return "EnergyMax"
	case StatusLengthMax:
		return "LengthMax"
	case StatusStepLimit:
		return "StepLimit"
	}
	return "Error"
}
