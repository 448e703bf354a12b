// Command adtlab is an interactive lab for bounded stacks and queues.
package main

import "github.com/sarchlab/adtlab/adtlab/cmd"

func main() {
	cmd.Execute()
}
