package main

import "os"

func main() {
	if err := newRootCmd(deps{}).Execute(); err != nil {
		os.Exit(1)
	}
}
