// Package commands implements the CLI commands of ip2networkd.
//
// Each command implements the Runner interface:
//   - Init(): parse positional arguments and load the configuration
//   - Run(): read the network state, filter it and write the units
//   - Name(): return the command name
//
// GenerateCommand reads the three `ip -j` documents, LiveCommand reads the
// running kernel over netlink. Both share the same filter and writer.
//
//	cmd := commands.CreateGenerateCommand()
//	if err := cmd.Init([]string{"addr.json", "route4.json", "route6.json", "/etc/systemd/network"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
