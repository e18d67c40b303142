//go:build !windows

package main

func dpiAware() {}
