// Package mcpserver exposes saved layouts to MCP clients.
//
// The server speaks the Model Context Protocol over stdio and offers tools
// to list, read, render, validate and save layout dumps. Dumps are read
// from and written to the same layout store the CLI and TUI use; presets
// are available under their names when no saved layout shadows them.
package mcpserver
