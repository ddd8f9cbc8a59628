package io

import (
	"errors"

	"github.com/abishjha/vc3600/translate"
)

var f = translate.From

var (
	// Device errors
	ErrInputEnd    = errors.New(f("console input exhausted"))
	ErrInputDigits = errors.New(f("Input is not all digits"))
)
