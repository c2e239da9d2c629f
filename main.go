// Command template-check validates the layout of a Claude command template
// repository and exits non-zero when required artifacts are missing.
package main

import (
	"os"

	"github.com/salchaD-27/template-check/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
