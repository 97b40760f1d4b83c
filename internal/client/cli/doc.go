// Package cli implements the dialkeeper command-line client.
//
// Each invocation runs one subcommand against the server:
//
//	dialkeeper register --name Alice --email alice@example.com --angles 10,200,300
//	dialkeeper login    --email alice@example.com --angles 12,198,305
//	dialkeeper secrets
//	dialkeeper add      --title wifi --type note
//	dialkeeper show     <id>
//	dialkeeper logout
//	dialkeeper ping
//	dialkeeper version
//
// login stores the issued token in a local session database; later commands
// use --token, DIALKEEPER_TOKEN or that stored token, in that order.
// Values missing from flags are prompted for on the terminal.
package cli
