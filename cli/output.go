package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output defines a uniform interface to write results to some stream.
// Diagnostics are not written to an Output but logged.
type Output interface {
	Print(text string) (int, error)
	Println(text string) (int, error)
	Printf(format string, args ...interface{}) (int, error)
	Printfln(format string, args ...interface{}) (int, error)
}

// plainOutput is a specific Output device which writes data in a raw format
type plainOutput struct {
	device io.Writer
}

func (o *plainOutput) Print(text string) (int, error) {
	return io.WriteString(o.device, text)
}

func (o *plainOutput) Println(text string) (int, error) {
	return io.WriteString(o.device, text+"\n")
}

func (o *plainOutput) Printf(format string, args ...interface{}) (int, error) {
	return fmt.Fprintf(o.device, format, args...)
}

func (o *plainOutput) Printfln(format string, args ...interface{}) (int, error) {
	return fmt.Fprintf(o.device, format+"\n", args...)
}

// printJSON writes data to out as one JSON document,
// indented if indent is set
func printJSON(out Output, data interface{}, indent bool) error {
	var b []byte
	var err error
	if indent {
		b, err = json.MarshalIndent(data, "", "  ")
	} else {
		b, err = json.Marshal(data)
	}
	if err != nil {
		return err
	}
	_, err = out.Println(string(b))
	return err
}
