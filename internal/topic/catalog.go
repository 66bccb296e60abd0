package topic

import "fmt"

// catalogEntry pairs a topic with its concept set.
type catalogEntry struct {
	topic    Topic
	concepts []Concept
}

// catalog holds the built-in topics in display order. Sessions may
// also be started on caller-supplied concept sets; these are the ones
// the TUI and CLI offer out of the box.
var catalog = []catalogEntry{
	{
		topic: Topic{
			ID:          "recursion",
			Name:        "Recursion",
			Description: "Functions that call themselves, and why they stop",
		},
		concepts: []Concept{
			{
				ID:          "base_case",
				Name:        "Base case",
				Description: "The input for which a recursive function answers directly without another call",
				Keywords:    []string{"termination", "smallest input", "direct answer"},
			},
			{
				ID:            "self_reference",
				Name:          "Self-reference",
				Description:   "Expressing a problem in terms of a smaller instance of itself",
				Keywords:      []string{"smaller subproblem", "recursive case", "reduction"},
				Prerequisites: []string{"base_case"},
			},
			{
				ID:            "stack_growth",
				Name:          "Call stack growth",
				Description:   "How pending recursive calls accumulate frames until the base case unwinds them",
				Keywords:      []string{"stack frame", "unwinding", "depth", "stack overflow"},
				Prerequisites: []string{"base_case"},
			},
			{
				ID:            "leap_of_faith",
				Name:          "The recursive leap of faith",
				Description:   "Trusting the recursive call to solve the smaller case while designing only one step",
				Keywords:      []string{"inductive reasoning", "trust the call", "one step"},
				Prerequisites: []string{"self_reference"},
			},
		},
	},
	{
		topic: Topic{
			ID:          "big-o-notation",
			Name:        "Big-O notation",
			Description: "Describing how running time scales with input size",
		},
		concepts: []Concept{
			{
				ID:          "growth_rates",
				Name:        "Growth rates",
				Description: "Comparing how functions grow as inputs get large",
				Keywords:    []string{"linear", "quadratic", "logarithmic", "scaling"},
			},
			{
				ID:            "dominant_terms",
				Name:          "Dominant terms",
				Description:   "Why only the fastest-growing term matters at scale",
				Keywords:      []string{"drop lower order", "asymptotic", "n squared beats n"},
				Prerequisites: []string{"growth_rates"},
			},
			{
				ID:            "constant_factors",
				Name:          "Constant factors",
				Description:   "Why Big-O ignores multiplicative constants and when that bites",
				Keywords:      []string{"coefficients", "machine dependent", "crossover point"},
				Prerequisites: []string{"growth_rates"},
			},
			{
				ID:            "worst_case",
				Name:          "Worst-case analysis",
				Description:   "Bounding an algorithm by its most expensive input",
				Keywords:      []string{"upper bound", "adversarial input", "guarantee"},
				Prerequisites: []string{"dominant_terms"},
			},
		},
	},
	{
		topic: Topic{
			ID:          "pointers",
			Name:        "Pointers",
			Description: "Values that refer to other values by address",
		},
		concepts: []Concept{
			{
				ID:          "memory_addresses",
				Name:        "Memory addresses",
				Description: "Every stored value lives somewhere, and that somewhere is itself a value",
				Keywords:    []string{"location", "address-of", "storage"},
			},
			{
				ID:            "dereferencing",
				Name:          "Dereferencing",
				Description:   "Following a pointer to read or write the value it refers to",
				Keywords:      []string{"indirection", "follow the arrow", "read through"},
				Prerequisites: []string{"memory_addresses"},
			},
			{
				ID:            "aliasing",
				Name:          "Aliasing",
				Description:   "Two names for one value, and how a write through one shows up in the other",
				Keywords:      []string{"shared state", "mutation visibility", "two references"},
				Prerequisites: []string{"dereferencing"},
			},
			{
				ID:            "nil_values",
				Name:          "Nil pointers",
				Description:   "Pointers that refer to nothing and what happens when you follow them",
				Keywords:      []string{"null", "guard check", "crash"},
				Prerequisites: []string{"dereferencing"},
			},
		},
	},
	{
		topic: Topic{
			ID:          "hash-tables",
			Name:        "Hash tables",
			Description: "Trading memory for near-constant lookups",
		},
		concepts: []Concept{
			{
				ID:          "key_hashing",
				Name:        "Key hashing",
				Description: "Turning an arbitrary key into a bucket index",
				Keywords:    []string{"hash function", "uniform spread", "deterministic"},
			},
			{
				ID:            "buckets",
				Name:          "Buckets",
				Description:   "Fixed slots that hold the entries a hash maps to",
				Keywords:      []string{"array slots", "index", "direct access"},
				Prerequisites: []string{"key_hashing"},
			},
			{
				ID:            "collisions",
				Name:          "Collisions",
				Description:   "Two keys landing in one bucket and the strategies for living with it",
				Keywords:      []string{"chaining", "open addressing", "same slot"},
				Prerequisites: []string{"buckets"},
			},
			{
				ID:            "load_factor",
				Name:          "Load factor",
				Description:   "How full is too full, and why tables resize",
				Keywords:      []string{"resize", "rehash", "occupancy ratio"},
				Prerequisites: []string{"collisions"},
			},
		},
	},
}

// Catalog returns the built-in topics in display order.
func Catalog() []Topic {
	out := make([]Topic, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e.topic)
	}
	return out
}

// Lookup returns a built-in topic and its concepts by topic ID.
func Lookup(topicID string) (Topic, []Concept, error) {
	for _, e := range catalog {
		if e.topic.ID == topicID {
			concepts := make([]Concept, len(e.concepts))
			copy(concepts, e.concepts)
			return e.topic, concepts, nil
		}
	}
	return Topic{}, nil, fmt.Errorf("unknown topic: %q", topicID)
}
