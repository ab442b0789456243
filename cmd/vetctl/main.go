// vetctl is the command-line front-end for the vet-system API:
// authentication plus owner, animal, and medical record management.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
