package content

// Seed returns the built-in catalog shipped with the binary. An external
// catalog loaded with --content replaces it wholesale.
func Seed() *Catalog {
	return &Catalog{Categories: seedCategories}
}

var seedCategories = []Category{
	{
		ID:   "programming",
		Name: "Programming",
		Specializations: []Specialization{
			{
				ID:   "go",
				Name: "Go",
				Levels: []Level{
					{
						ID:     1,
						Number: 1,
						Questions: []Question{
							{
								ID:           1,
								Text:         "Which declaration infers the variable's type from its initializer?",
								Options:      []string{"var x int = 1", "x := 1", "let x = 1", "def x = 1"},
								CorrectIndex: 1,
							},
							{
								ID:           2,
								Text:         "What is the zero value of a string?",
								Options:      []string{"nil", "\"\"", "0", "undefined"},
								CorrectIndex: 1,
							},
							{
								ID:           3,
								Text:         "Which type holds a 64-bit floating point number?",
								Options:      []string{"float", "double", "float64", "real"},
								CorrectIndex: 2,
							},
							{
								ID:           4,
								Text:         "How is an identifier exported from a package?",
								Options:      []string{"With the export keyword", "By starting its name with an uppercase letter", "By listing it in go.mod", "With a pub prefix"},
								CorrectIndex: 1,
							},
						},
					},
					{
						ID:     2,
						Number: 2,
						Questions: []Question{
							{
								ID:           1,
								Text:         "What does reading a missing key from a map return?",
								Options:      []string{"A panic", "The value type's zero value", "An error", "nil, always"},
								CorrectIndex: 1,
							},
							{
								ID:           2,
								Text:         "Which statement starts a goroutine?",
								Options:      []string{"async f()", "spawn f()", "go f()", "thread f()"},
								CorrectIndex: 2,
							},
							{
								ID:           3,
								Text:         "What does defer do?",
								Options:      []string{"Skips a statement", "Runs a call when the surrounding function returns", "Delays a call by one second", "Moves a call to another goroutine"},
								CorrectIndex: 1,
							},
							{
								ID:           4,
								Text:         "Which construct waits on multiple channel operations?",
								Options:      []string{"switch", "select", "for range", "await"},
								CorrectIndex: 1,
							},
						},
					},
					{
						ID:     3,
						Number: 3,
						Questions: []Question{
							{
								ID:           1,
								Text:         "When does an interface value compare equal to nil?",
								Options:      []string{"When its dynamic value is nil", "When both its dynamic type and value are nil", "When it is zero-sized", "Never"},
								CorrectIndex: 1,
							},
							{
								ID:           2,
								Text:         "What does the race detector report?",
								Options:      []string{"Deadlocks", "Unsynchronized concurrent memory access", "Slow goroutines", "Leaked channels"},
								CorrectIndex: 1,
							},
							{
								ID:           3,
								Text:         "What happens when a buffered channel is full and a goroutine sends to it?",
								Options:      []string{"The value is dropped", "The send blocks", "A panic", "The buffer grows"},
								CorrectIndex: 1,
							},
						},
					},
				},
			},
			{
				ID:   "databases",
				Name: "Databases",
				Children: []Specialization{
					{
						ID:   "sql",
						Name: "Relational SQL",
						Levels: []Level{
							{
								ID:     1,
								Number: 1,
								Questions: []Question{
									{
										ID:           1,
										Text:         "Which clause filters rows before grouping?",
										Options:      []string{"HAVING", "WHERE", "ORDER BY", "LIMIT"},
										CorrectIndex: 1,
									},
									{
										ID:           2,
										Text:         "What does a PRIMARY KEY constraint guarantee?",
										Options:      []string{"Fast full scans", "Uniqueness and non-null values", "Foreign references", "Sorted storage"},
										CorrectIndex: 1,
									},
									{
										ID:           3,
										Text:         "Which join keeps unmatched rows from the left table?",
										Options:      []string{"INNER JOIN", "LEFT JOIN", "CROSS JOIN", "NATURAL JOIN"},
										CorrectIndex: 1,
									},
									{
										ID:           4,
										Text:         "Which isolation level permits dirty reads?",
										Options:      []string{"READ UNCOMMITTED", "READ COMMITTED", "REPEATABLE READ", "SERIALIZABLE"},
										CorrectIndex: 0,
									},
								},
							},
							{
								ID:     2,
								Number: 2,
								Questions: []Question{
									{
										ID:           1,
										Text:         "Which filters does a composite index on (a, b) accelerate?",
										Options:      []string{"Filters on b alone", "Filters on a, or on a and b together", "Only equality on both columns", "None without ANALYZE"},
										CorrectIndex: 1,
									},
									{
										ID:           2,
										Text:         "Which statement opens a transaction?",
										Options:      []string{"VACUUM", "BEGIN", "EXPLAIN", "CHECKPOINT"},
										CorrectIndex: 1,
									},
									{
										ID:           3,
										Text:         "What does a correlated subquery reference?",
										Options:      []string{"A temporary table", "Columns from the outer query", "Another database", "Only constants"},
										CorrectIndex: 1,
									},
								},
							},
						},
					},
					{
						ID:   "nosql",
						Name: "NoSQL Stores",
						Levels: []Level{
							{
								ID:     1,
								Number: 1,
								Questions: []Question{
									{
										ID:           1,
										Text:         "Which model does a key-value store expose?",
										Options:      []string{"Tables with joins", "Opaque values addressed by key", "Triples", "Documents with enforced schemas"},
										CorrectIndex: 1,
									},
									{
										ID:           2,
										Text:         "What does eventual consistency promise?",
										Options:      []string{"Reads always see the latest write", "Replicas converge once writes stop", "Writes never conflict", "A linearizable history"},
										CorrectIndex: 1,
									},
									{
										ID:           3,
										Text:         "Which of these is a wide-column store?",
										Options:      []string{"Redis", "Cassandra", "SQLite", "Neo4j"},
										CorrectIndex: 1,
									},
								},
							},
							// Level 2 content is not authored yet; it stays
							// locked and blocks everything after it.
							{
								ID:     2,
								Number: 2,
							},
							{
								ID:     3,
								Number: 3,
								Questions: []Question{
									{
										ID:           1,
										Text:         "What is a tombstone in a log-structured store?",
										Options:      []string{"A checksum", "A deletion marker", "A snapshot", "An index page"},
										CorrectIndex: 1,
									},
									{
										ID:           2,
										Text:         "What does compaction do?",
										Options:      []string{"Encrypts segments", "Merges segments and drops superseded entries", "Splits hot keys", "Rebalances replicas"},
										CorrectIndex: 1,
									},
								},
							},
						},
					},
				},
			},
			{
				ID:   "algorithms",
				Name: "Algorithms",
				// Coming soon.
			},
		},
	},
	{
		ID:   "networking",
		Name: "Networking",
		Specializations: []Specialization{
			{
				ID:   "http",
				Name: "HTTP",
				Levels: []Level{
					{
						ID:     1,
						Number: 1,
						Questions: []Question{
							{
								ID:           1,
								Text:         "Which method is defined as idempotent?",
								Options:      []string{"POST", "PUT", "PATCH", "CONNECT"},
								CorrectIndex: 1,
							},
							{
								ID:           2,
								Text:         "What does status 304 mean?",
								Options:      []string{"Moved permanently", "Not modified", "Forbidden", "Bad gateway"},
								CorrectIndex: 1,
							},
							{
								ID:           3,
								Text:         "Which header carries the media type of a response body?",
								Options:      []string{"Accept", "Content-Type", "Content-Encoding", "Vary"},
								CorrectIndex: 1,
							},
						},
					},
					{
						ID:     2,
						Number: 2,
						Questions: []Question{
							{
								ID:           1,
								Text:         "Which transport does HTTP/3 run over?",
								Options:      []string{"TCP", "QUIC over UDP", "SCTP", "Raw IP"},
								CorrectIndex: 1,
							},
							{
								ID:           2,
								Text:         "What does the Vary header control?",
								Options:      []string{"Compression level", "Cache key dimensions", "Redirect targets", "Connection reuse"},
								CorrectIndex: 1,
							},
						},
					},
				},
			},
			{
				ID:   "transport",
				Name: "Transport Protocols",
				Levels: []Level{
					{
						ID:     1,
						Number: 1,
						Questions: []Question{
							{
								ID:           1,
								Text:         "How many packets make up a TCP three-way handshake?",
								Options:      []string{"Two", "Three", "Four", "One"},
								CorrectIndex: 1,
							},
							{
								ID:           2,
								Text:         "Which protocol is connectionless?",
								Options:      []string{"TCP", "UDP", "TLS", "HTTP/2"},
								CorrectIndex: 1,
							},
							{
								ID:           3,
								Text:         "What does the TCP window field advertise?",
								Options:      []string{"Round-trip time", "Receive buffer space", "Congestion events", "Segment checksum"},
								CorrectIndex: 1,
							},
						},
					},
				},
			},
		},
	},
}
