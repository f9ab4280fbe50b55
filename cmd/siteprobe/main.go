// Command siteprobe checks the listing selectors and the load more nonce of a
// madara theme site.
package main

import (
	"fmt"
	"os"

	"github.com/morikuni/failure/v2"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		userMessage := err.Error()
		if fmsg := failure.MessageOf(err); fmsg != "" {
			userMessage = fmsg.String()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", userMessage)
		os.Exit(1)
	}
}
