package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	Session     SessionSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	User        UserSvcFacade
	Trip        TripSvcFacade
	Event       EventSvcFacade
	Journal     JournalSvcFacade
	Destination DestinationSvcFacade
}
