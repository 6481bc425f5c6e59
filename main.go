// Command climate parses "city,year,temperature" lines into typed records.
//
// Usage:
//
//	# Parse the two built-in examples (the second one is empty and fails)
//	climate
//
//	# Parse specific lines as JSON
//	climate --format json "Hong Kong,1999,25.7" "Oslo,2021,-12.5"
//
//	# Expose Prometheus metrics and wait for a scrape
//	climate --metrics-addr :9090 --wait
package main

func main() {
	Execute()
}
