package main

import "github.com/masmgr/git-unmerged-go/cmd"

func main() {
	cmd.Run()
}
