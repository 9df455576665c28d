////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package services

import (
	"github.com/pkg/errors"
)

// ErrorKind classifies the failures of the parallel counter.
type ErrorKind int

const (
	// InvalidConfiguration is returned for a non-positive worker count.
	InvalidConfiguration ErrorKind = iota + 1
	// ResourceExhaustion is returned when the requested number of workers
	// cannot be started.
	ResourceExhaustion
	// WorkerFailure is returned when a worker faults while counting.
	WorkerFailure
)

// Sentinel errors for each ErrorKind. Errors returned by the dispatcher wrap
// one of these, so they can be matched with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrResourceExhaustion   = errors.New("resource exhaustion")
	ErrWorkerFailure        = errors.New("worker failure")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case ResourceExhaustion:
		return "ResourceExhaustion"
	case WorkerFailure:
		return "WorkerFailure"
	default:
		return "Unknown"
	}
}

// KindOf returns the ErrorKind of an error produced by the dispatcher. The
// bool is false for nil and for errors from anywhere else.
func KindOf(err error) (ErrorKind, bool) {
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, ErrInvalidConfiguration):
		return InvalidConfiguration, true
	case errors.Is(err, ErrResourceExhaustion):
		return ResourceExhaustion, true
	case errors.Is(err, ErrWorkerFailure):
		return WorkerFailure, true
	default:
		return 0, false
	}
}
