package utils

// Index addresses rows or entries of a Matrix or Vector by position.
type Index []int
