package main

// Version is the labdb release version, printed by the cobra-generated
// version subcommand and --version flag.
const Version = "0.1.0"
