// Package main provides the metasv command-line tool: conversion of
// BreakDancer and Pindel caller output into normalized SV intervals and
// VCF.
package main

func main() {
	Execute()
}
