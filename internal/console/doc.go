// Package console runs the interactive prompt loop.
//
// The loop has two states. While awaiting a URL, any input other than a
// command is scraped; once a page has content, any input other than a
// command is a question about it. The commands are case-insensitive:
//
//	x    exit
//	e    clear the screen
//	new  scrape a different website (question prompt only)
//
// Input is read on a separate goroutine so that an interrupt arriving
// while the user is typing can be reported and the prompt shown again
// instead of ending the process. End of input ends the loop like x.
package console
