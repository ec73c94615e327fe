// Package process implements driven.ProcessManager by shelling out to the
// operating system's process tools: ps and kill on POSIX systems,
// PowerShell and taskkill on Windows.
package process
