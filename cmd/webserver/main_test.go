package main

import "testing"

func TestRootCommandArguments(t *testing.T) {
	if err := rootCommand.Args(rootCommand, nil); err != nil {
		t.Errorf("no arguments rejected: %v", err)
	}
	if err := rootCommand.Args(rootCommand, []string{"8080"}); err != nil {
		t.Errorf("port argument rejected: %v", err)
	}
	if err := rootCommand.Args(rootCommand, []string{"8080", "extra"}); err == nil {
		t.Error("two arguments accepted")
	}
}

func TestRootCommandConfigFlag(t *testing.T) {
	flag := rootCommand.Flags().Lookup("config")
	if flag == nil {
		t.Fatal("config flag missing")
	}
	if flag.Shorthand != "c" {
		t.Errorf("shorthand = %q, want c", flag.Shorthand)
	}
}
