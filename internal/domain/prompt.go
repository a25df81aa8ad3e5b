package domain

type Prompt string

const (
	PromptUserName  Prompt = "user_name"
	PromptPassword  Prompt = "password"
	PromptSelection Prompt = "selection"
	PromptQuantity  Prompt = "quantity"
)
