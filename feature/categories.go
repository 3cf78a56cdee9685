package feature

/*
Categories is an ordered set of category strings. Categories can only be
added at the end of the set: existing categories never change position,
which keeps category indices stable.

Categories is not safe for concurrent modification.
*/
type Categories struct {
	values []string
	index  map[string]int
}

/*
NewCategories takes a slice of strings and returns a Categories set with
them in the same order. Repeated values are kept only once, at the
position of their first appearance.
*/
func NewCategories(values []string) *Categories {
	c := &Categories{index: make(map[string]int, len(values))}
	for _, v := range values {
		c.Add(v)
	}
	return c
}

/*
Index returns the position of the given category in the set and whether
it belongs to it.
*/
func (c *Categories) Index(value string) (int, bool) {
	i, ok := c.index[value]
	return i, ok
}

/*
Add appends the given category to the set if not present. It returns the
position of the category and whether it was appended.
*/
func (c *Categories) Add(value string) (int, bool) {
	if i, ok := c.index[value]; ok {
		return i, false
	}
	c.values = append(c.values, value)
	c.index[value] = len(c.values) - 1
	return len(c.values) - 1, true
}

// Len returns the number of categories in the set.
func (c *Categories) Len() int {
	return len(c.values)
}

// Values returns a copy of the categories in order.
func (c *Categories) Values() []string {
	result := make([]string, len(c.values))
	copy(result, c.values)
	return result
}
