package rest

const (
	// api
	RouteAPI = "/api"

	// auth
	RouteAuth           = RouteAPI + "/auth"
	RouteRegister       = RouteAuth + "/register"
	RouteLogin          = RouteAuth + "/login"
	RouteForgotPassword = RouteAuth + "/forgot-password"
	RouteResetPassword  = RouteAuth + "/reset-password/:token"

	// content
	RouteAnnouncements = RouteAPI + "/announcements"
	RouteAnnouncement  = RouteAnnouncements + "/:announcement_id"

	RouteBlogs = RouteAPI + "/blogs"
	RouteBlog  = RouteBlogs + "/:blog_id"

	RoutePublications = RouteAPI + "/publications"
	RoutePublication  = RoutePublications + "/:publication_id"

	RouteTeam       = RouteAPI + "/team"
	RouteTeamMember = RouteTeam + "/:member_id"

	RouteOpportunities = RouteAPI + "/opportunities"
	RouteOpportunity   = RouteOpportunities + "/:opportunity_id"

	RouteEvents = RouteAPI + "/events"
	RouteEvent  = RouteEvents + "/:event_id"

	RouteContact = RouteAPI + "/contact"

	RouteDonations = RouteAPI + "/donations"
	RouteDonation  = RouteDonations + "/:donation_id"

	// ops
	RouteHealth  = RouteAPI + "/healthz"
	RouteMetrics = RouteAPI + "/metrics"
)
