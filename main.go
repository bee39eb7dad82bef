/*
Copyright © 2025 madmaxieee
*/
package main

import "github.com/madmaxieee/azchat/cmd"

func main() {
	cmd.Execute()
}
