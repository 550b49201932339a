// Package cmd provides the CLI for the mssqlsplit tool.
//
// Splitting a dump is the root action, so the common invocation takes no
// subcommand:
//
//	mssqlsplit [flags] <dump_file_path> [<output_directory>]
//
// # Available Commands
//
//   - (root): split a dump into <output_directory>/{FN,SP,TB}/<name>.sql
//   - list: print the objects of a dump and where they would be written
//   - verify: check an output directory against its objects.sum
//
// # Global Options
//
// Flags are declared on the root command and apply to every subcommand:
//   - --config, -c: configuration file (default mssqlsplit.yaml, env MSSQLSPLIT_CONFIG)
//   - --quiet, -q: only log warnings and errors
//   - --on-error: fail (default) or collect
//   - --collisions: overwrite (default) or error
//   - --include, --exclude: glob patterns matched against file safe names
//   - --keep-dates: keep Script Date timestamps
//   - --manifest: write objects.sum
//   - --allow-empty: treat a dump without objects as success (default true)
//
// Flags that are set explicitly win over the configuration file. The file is
// loaded before any command runs. A missing default file means defaults, while
// a file named by --config or MSSQLSPLIT_CONFIG has to exist.
//
// # Example Usage
//
//	mssqlsplit AddressBook.sql                        # write to ./AddressBook (from USE [AddressBook])
//	mssqlsplit AddressBook.sql out/                   # write to ./out
//	mssqlsplit --on-error collect AddressBook.sql     # write what can be classified, report the rest
//	mssqlsplit --include 'addr_*' list AddressBook.sql
//	mssqlsplit verify AddressBook                     # compare files with objects.sum
//
// Commands are provided to the fx application through the "commands" value
// group and run by Run when the application starts.
package cmd
