package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrymomot/textcanon/pkg/config"
)

// execute runs rootCmd with args and stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	config.Reset()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags() {
	applyJSON = false
	csvProfile = ""
	csvClean = ""
	csvFields = nil
	csvRawFirstRow = false
	csvComma = ","
	csvStrict = false
	csvMemo = 0
}
