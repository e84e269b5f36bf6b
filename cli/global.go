package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// <constants>
const configJSONErrMsg = `could not serialize config JSON: %s`
const resultJSONErrMsg = `could not serialize result JSON: %s`

const (
	exitOK          = 0
	exitUsage       = 2
	exitIO          = 6
	exitUnsupported = 8
	exitCheckFailed = 100
)

// </constants>

// <global-variables>
//   <subset purpose="used by ‘cobra’">
var argConfigOutput bool
var argJSONOutput bool
var argVerbose bool

//   </subset>

//   <subset purpose="used for passing values between ‘cobra’ methods">
var w Output
var log *logrus.Logger
var stdin io.Reader
var exitCode int
var cmdError error

//   </subset>
// </global-variables>
