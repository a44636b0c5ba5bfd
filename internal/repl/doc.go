// Package repl runs the chatbot's interactive prompt: it reads one line at a
// time, sends it as a single user message, and prints the reply.
//
// Typing "exit" or "quit" (any letter case) or closing the input ends the
// session with a farewell. A failed turn is reported on the output and the
// prompt comes back; only a broken input stream or a cancelled context stops
// [Session.Run] with an error.
package repl
