// Package console writes the per record result lines and the run summary.
package console

import (
	"io"

	"github.com/fatih/color"
)

type Printer struct {
	stdout io.Writer
	stderr io.Writer
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

// New creates a printer writing to stdout and stderr.
// Lines are colored only if colorize is true, which should
// be the case only when stdout is a terminal.
func New(stdout, stderr io.Writer, colorize bool) *Printer {
	p := &Printer{
		stdout: stdout,
		stderr: stderr,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.green, p.yellow, p.red} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) Success(hostname, ip string) {
	p.println(p.stdout, p.green.Sprint("SUCCESS: Record for "+hostname+" updated to "+ip))
}

func (p *Printer) NoChange(hostname, ip string) {
	p.println(p.stdout, p.yellow.Sprint("NOCHANGE: Record for "+hostname+
		" is already up-to-date with IP "+ip))
}

func (p *Printer) Unrecognized(hostname, response string) {
	p.println(p.stdout, "INFO: OVH response for "+hostname+": "+response)
}

// Rejected is used when the provider answered with an error status.
func (p *Printer) Rejected(hostname string, err error) {
	p.println(p.stderr, p.red.Sprint("ERROR: Failed to update DynHost for "+hostname+": "+err.Error()))
}

// Errored is used when the update could not complete.
func (p *Printer) Errored(hostname string, err error) {
	p.println(p.stderr, p.red.Sprint("ERROR: Error updating DynHost for "+hostname+": "+err.Error()))
}

// ConfigMissing writes instructions to create the records file
// with the example content given.
func (p *Printer) ConfigMissing(path, example string) {
	p.println(p.stderr, "Error: Could not find '"+path+"'.")
	p.println(p.stderr, "Please create a '"+path+"' file with the following format:")
	p.println(p.stderr, example)
}

func (p *Printer) Summary(succeeded bool) {
	if succeeded {
		p.println(p.stdout, "\nAll records updated successfully.")
		return
	}
	p.println(p.stdout, "\nFinished with errors.")
}

func (p *Printer) println(w io.Writer, line string) {
	_, _ = io.WriteString(w, line+"\n")
}
