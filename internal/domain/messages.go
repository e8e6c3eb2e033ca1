package domain

const (
	// GenericErrorMessage is shown when a remote call fails without a usable message.
	GenericErrorMessage = "Something went wrong. Please try again."

	// NoCabsMessage is shown when a cab search returns nothing.
	NoCabsMessage = "No cabs available for the selected route and time."
)
