// Command depix is the terminal front end for the pixel-art vectorizer.
package main

import "github.com/Fepozopo/depix/pkg/cli"

func main() {
	cli.RunCLI()
}
