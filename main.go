package main

import "study-planner.com/study-planner/cmd"

func main() {
	cmd.Execute()
}
