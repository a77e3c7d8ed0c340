package printer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Spooler submits a file to the physical print sink. The only observable
// outcomes are "submitted" (nil) or an error; there is no job tracking.
type Spooler interface {
	Submit(ctx context.Context, filePath string) error
}

// submitTimeout bounds a single spool invocation; a wedged spooler must
// not pin goroutines forever
const submitTimeout = 30 * time.Second

// CommandSpooler hands files to the OS print spooler through a command
// such as lp or lpr.
type CommandSpooler struct {
	command     string
	printerName string
}

// NewCommandSpooler creates a spooler that invokes the given print command.
// printerName is optional; when set it is passed as the print destination.
func NewCommandSpooler(command, printerName string) *CommandSpooler {
	if command == "" {
		command = "lp"
	}
	return &CommandSpooler{
		command:     command,
		printerName: printerName,
	}
}

// Submit spools a single file. Blocking, but bounded by submitTimeout.
func (s *CommandSpooler) Submit(ctx context.Context, filePath string) error {
	ctx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	var args []string
	if s.printerName != "" {
		args = append(args, "-d", s.printerName)
	}
	args = append(args, filePath)

	cmd := exec.CommandContext(ctx, s.command, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("print command %s failed: %w: %s", s.command, err, bytes.TrimSpace(out))
	}

	return nil
}
