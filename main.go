// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/ukpostcode/postcode/cmd/postcode"

func main() {
	cmd.Execute()
}
