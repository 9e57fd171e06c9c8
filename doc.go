// Package uci reads, edits and writes OpenWrt-style UCI configuration
// trees.
//
// A config file is a flat list of typed sections holding scalar options
// and ordered lists:
//
//	config interface 'lan'
//		option ifname 'eth0'
//		option proto 'static'
//		list dns '8.8.8.8'
//		list dns '8.8.4.4'
//
// Parse turns such input into a Config; Config.Write renders it back.
// Sections are addressed by name, or positionally with a selector such
// as "@interface[0]" ("@interface[-1]" counts from the end).
//
// Tree is a transactional store over a directory of config files:
//
//	tree := uci.NewTree("/etc/config")
//	values, err := tree.Get("network", "lan", "dns")
//	err = tree.Set("network", "lan", "proto", "dhcp")
//	err = tree.Commit()
//
// Reads auto-load configs on first access; edits stay in memory until
// Commit writes every modified config atomically, and Revert discards
// them. Section.Scan decodes options into structs, MarshalTOML and
// ImportTOML provide a TOML interchange form, and Tree.Watch polls a
// config's backing file for outside changes.
package uci
