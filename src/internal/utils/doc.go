// Package utils provides small file helpers shared by ip2networkd packages.
//
//	if err := utils.EnsureDir("/etc/systemd/network", 0755); err != nil {
//	    return err
//	}
//	err := utils.WriteFile("/etc/systemd/network/eth0.network", data, 0644)
package utils
