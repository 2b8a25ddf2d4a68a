// Package argot builds command-line applications from a nested command schema.
//
// An application is a tree of [CommandDefinition] values. Each definition
// declares its positional arguments, its flags (shorthand or full form), its
// aliases, nested commands and a handler. [App.Run] tokenizes argv, routes the
// leading words through a prefix tree of the declared commands, parses flags
// against the matched command, validates and coerces values and finally calls
// the handler between the registered lifecycle hooks.
//
// The individual stages are exported so they can be used on their own:
// [Tokenize], [ParseArgv], [BuildRouter], [FindCommand], [ValidateCommand],
// [ApplyDefaults] and [ExecuteCommand].
package argot
