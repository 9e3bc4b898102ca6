// Command sudoku reads a 9-line textual Sudoku puzzle from a file or
// standard input, solves it, and prints the completed board — or
// "No solution" when the puzzle admits none.
package main

func main() {
	Execute()
}
