package errs

// Client-facing messages.
const (
	MsgRequestFailed        = "Request failed"
	MsgProductNotFound      = "Product does not exist"
	MsgUserNotFound         = "User does not exist"
	MsgNotProductOwner      = "You must be the creator of the product to perform this action"
	MsgAlreadyBoughtItem    = "You have already bought the item"
	MsgAlreadyBoughtProduct = "You have already bought this product"
	MsgCannotBuyOwnProduct  = "You cannot buy a product that you have created"
	MsgInvalidSession       = "Invalid session"
	MsgInvalidToken         = "Invalid token"
	MsgMustBeLoggedOut      = "You must be logged out to perform this action"
	MsgWrongCredentials     = "Wrong username or password"
	MsgUsernameTaken        = "Username already exists"
	MsgInvalidOption        = "Invalid option"
)
