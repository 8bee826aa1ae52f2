// Package userdata resolves the per-user files open-lnk reads and writes
// under the XDG base directories: the mapping file, the link cache, the log
// file and the config file. It also creates them on init and checks their
// health for the doctor command.
package userdata
