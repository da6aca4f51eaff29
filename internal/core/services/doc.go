// Package services implements the driving ports on top of the driven ports.
//
//   - LookupService: answers lookup search events and supplies recently
//     viewed records as default results
//   - NavigationService: forwards new-record navigation requests
//   - SettingsService: maps config store keys to domain.LookupSettings
//
// Services hold no UI state. The lookup widget owns selection, search term
// and focus; services only see the events it emits.
package services
