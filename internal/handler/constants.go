// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the splash page.
	RouteRoot = "/"
	// RouteHome is the event listing landing page.
	RouteHome = "/home"
	// RouteRegister is the user registration route.
	RouteRegister = "/register"
	// RouteLogin is the user login route.
	RouteLogin = "/login"
	// RouteLogout is the user logout route.
	RouteLogout = "/logout"
	// RouteEvents is the events page with registration forms.
	RouteEvents = "/events"
	// RouteRegisterEvent is the participant sign-up route.
	RouteRegisterEvent = "/register_event/{eventID}"
	// RouteFeedback is the feedback route.
	RouteFeedback = "/feedback"
	// RouteChatbot is the JSON chatbot route.
	RouteChatbot = "/chatbot"
	// RouteAdminLogin is the admin login route.
	RouteAdminLogin = "/admin-login"
	// RouteAdminDashboard is the admin dashboard route.
	RouteAdminDashboard = "/admin/dashboard"
	// RouteAdminCreateEvent is the admin event creation route.
	RouteAdminCreateEvent = "/admin/create_event"
	// RouteAdminParticipants is the admin participant listing route.
	RouteAdminParticipants = "/admin/participants/{eventID}"
	// RouteAdminLogout is the admin logout route.
	RouteAdminLogout = "/admin/logout"
)

// Flash message types rendered by the base layout.
const (
	flashTypeSuccess = "success"
	flashTypeDanger  = "danger"
	flashTypeInfo    = "info"
)
