// Package main provides the gantools CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/born-ml/gantools/gan"
	"github.com/born-ml/gantools/internal/device"
	"github.com/born-ml/gantools/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("gantools %s\n", version)
	case "losses":
		fmt.Println(strings.Join(gan.LossNames, "\n"))
	case "optimizers":
		fmt.Println(strings.Join([]string{optim.NameSGD, optim.NameAdam, optim.NameRMSProp}, "\n"))
	case "device":
		p := device.Resolve(true)
		fmt.Printf("WebGPU adapter: %t\n", p.Adapter)
		fmt.Printf("Kernels run on: %s\n", p.Device)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("gantools - GAN building blocks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version     Show version")
	fmt.Println("  losses      List GAN losses")
	fmt.Println("  optimizers  List optimizers")
	fmt.Println("  device      Probe for a WebGPU adapter")
	fmt.Println("")
	fmt.Println("Examples: go run ./examples/gaussian-gan, go run ./examples/unet-lsgan")
}
