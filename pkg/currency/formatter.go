package currency

import "strconv"

// FormatINR renders a fare in rupees with Indian digit grouping: the last
// three digits form one group, everything above groups in pairs
// (1234567 -> "₹12,34,567").
func FormatINR(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	intStr := strconv.Itoa(amount)
	formatted := groupIndian(intStr)

	result := "₹" + formatted
	if negative {
		result = "-" + result
	}

	return result
}

func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	head := s[:n-3]
	tail := s[n-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	out := groups[0]
	for _, g := range groups[1:] {
		out += "," + g
	}
	return out
}
