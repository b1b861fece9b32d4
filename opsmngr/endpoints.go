package opsmngr

import "net/http"

// Op names one operation of the Public API. Every client method resolves
// its Op against the endpoint catalog before anything touches the network.
type Op string

// Operations supported by the client, one per documented endpoint.
const (
	OpGetGroups           Op = "GetGroups"
	OpGetGroup            Op = "GetGroup"
	OpGetGroupByName      Op = "GetGroupByName"
	OpCreateGroup         Op = "CreateGroup"
	OpDeleteGroup         Op = "DeleteGroup"
	OpGetGroupUsers       Op = "GetGroupUsers"
	OpAddUsersToGroup     Op = "AddUsersToGroup"
	OpRemoveUserFromGroup Op = "RemoveUserFromGroup"

	OpGetHosts      Op = "GetHosts"
	OpGetHost       Op = "GetHost"
	OpGetHostByName Op = "GetHostByName"
	OpCreateHost    Op = "CreateHost"
	OpUpdateHost    Op = "UpdateHost"
	OpDeleteHost    Op = "DeleteHost"
	OpGetLastPing   Op = "GetLastPing"

	OpGetAgents Op = "GetAgents"

	OpGetClusters   Op = "GetClusters"
	OpGetCluster    Op = "GetCluster"
	OpRenameCluster Op = "RenameCluster"

	OpGetAlerts              Op = "GetAlerts"
	OpGetAlert               Op = "GetAlert"
	OpAcknowledgeAlert       Op = "AcknowledgeAlert"
	OpGetAlertConfigs        Op = "GetAlertConfigs"
	OpGetAlertConfigsByAlert Op = "GetAlertConfigsByAlert"
	OpGetOpenAlertsByConfig  Op = "GetOpenAlertsByConfig"
	OpCreateAlertConfig      Op = "CreateAlertConfig"
	OpUpdateAlertConfig      Op = "UpdateAlertConfig"
	OpSetAlertConfigEnabled  Op = "SetAlertConfigEnabled"
	OpDeleteAlertConfig      Op = "DeleteAlertConfig"

	OpGetMaintenanceWindows   Op = "GetMaintenanceWindows"
	OpGetMaintenanceWindow    Op = "GetMaintenanceWindow"
	OpCreateMaintenanceWindow Op = "CreateMaintenanceWindow"
	OpUpdateMaintenanceWindow Op = "UpdateMaintenanceWindow"
	OpDeleteMaintenanceWindow Op = "DeleteMaintenanceWindow"

	OpGetBackupConfigs       Op = "GetBackupConfigs"
	OpGetBackupConfig        Op = "GetBackupConfig"
	OpUpdateBackupConfig     Op = "UpdateBackupConfig"
	OpGetSnapshotSchedule    Op = "GetSnapshotSchedule"
	OpUpdateSnapshotSchedule Op = "UpdateSnapshotSchedule"

	OpGetSnapshots   Op = "GetSnapshots"
	OpGetSnapshot    Op = "GetSnapshot"
	OpDeleteSnapshot Op = "DeleteSnapshot"

	OpGetCheckpoints Op = "GetCheckpoints"
	OpGetCheckpoint  Op = "GetCheckpoint"

	OpGetRestoreJobs       Op = "GetRestoreJobs"
	OpGetRestoreJob        Op = "GetRestoreJob"
	OpCreateRestoreJob     Op = "CreateRestoreJob"
	OpGetHostRestoreJobs   Op = "GetHostRestoreJobs"
	OpGetHostRestoreJob    Op = "GetHostRestoreJob"
	OpCreateHostRestoreJob Op = "CreateHostRestoreJob"

	OpGetUser          Op = "GetUser"
	OpGetUserByName    Op = "GetUserByName"
	OpCreateUser       Op = "CreateUser"
	OpCreateFirstUser  Op = "CreateFirstUser"
	OpUpdateUser       Op = "UpdateUser"
	OpGetUserWhitelist Op = "GetUserWhitelist"

	OpGetAutomationConfig    Op = "GetAutomationConfig"
	OpUpdateAutomationConfig Op = "UpdateAutomationConfig"
	OpGetAutomationStatus    Op = "GetAutomationStatus"

	OpGetHostMetrics    Op = "GetHostMetrics"
	OpGetHostMetric     Op = "GetHostMetric"
	OpGetDeviceMetric   Op = "GetDeviceMetric"
	OpGetDatabaseMetric Op = "GetDatabaseMetric"
)

// endpoint describes the shape of one operation: HTTP method, path template
// relative to the API base, the names of the path parameters in template
// order, and which variants expose it.
type endpoint struct {
	method   string
	path     string   // fmt template, one %s per entry in params
	params   []string // parameter names, used in validation errors
	variants Variant
}

// endpoints is the catalog every call is dispatched through. Paths mirror
// the published API reference for the Public API v1.0.
var endpoints = map[Op]endpoint{
	OpGetGroups:           {http.MethodGet, "groups", nil, anyVariant},
	OpGetGroup:            {http.MethodGet, "groups/%s", []string{"groupID"}, anyVariant},
	OpGetGroupByName:      {http.MethodGet, "groups/byName/%s", []string{"groupName"}, anyVariant},
	OpCreateGroup:         {http.MethodPost, "groups", nil, anyVariant},
	OpDeleteGroup:         {http.MethodDelete, "groups/%s", []string{"groupID"}, anyVariant},
	OpGetGroupUsers:       {http.MethodGet, "groups/%s/users", []string{"groupID"}, anyVariant},
	OpAddUsersToGroup:     {http.MethodPatch, "groups/%s/users", []string{"groupID"}, anyVariant},
	OpRemoveUserFromGroup: {http.MethodDelete, "groups/%s/users/%s", []string{"groupID", "userID"}, anyVariant},

	OpGetHosts:      {http.MethodGet, "groups/%s/hosts", []string{"groupID"}, anyVariant},
	OpGetHost:       {http.MethodGet, "groups/%s/hosts/%s", []string{"groupID", "hostID"}, anyVariant},
	OpGetHostByName: {http.MethodGet, "groups/%s/hosts/byName/%s", []string{"groupID", "hostName"}, anyVariant},
	OpCreateHost:    {http.MethodPost, "groups/%s/hosts", []string{"groupID"}, anyVariant},
	OpUpdateHost:    {http.MethodPatch, "groups/%s/hosts/%s", []string{"groupID", "hostID"}, anyVariant},
	OpDeleteHost:    {http.MethodDelete, "groups/%s/hosts/%s", []string{"groupID", "hostID"}, anyVariant},
	OpGetLastPing:   {http.MethodGet, "groups/%s/hosts/%s/lastPing", []string{"groupID", "hostID"}, anyVariant},

	OpGetAgents: {http.MethodGet, "groups/%s/agents/%s", []string{"groupID", "agentType"}, anyVariant},

	OpGetClusters:   {http.MethodGet, "groups/%s/clusters", []string{"groupID"}, anyVariant},
	OpGetCluster:    {http.MethodGet, "groups/%s/clusters/%s", []string{"groupID", "clusterID"}, anyVariant},
	OpRenameCluster: {http.MethodPatch, "groups/%s/clusters/%s", []string{"groupID", "clusterID"}, anyVariant},

	OpGetAlerts:              {http.MethodGet, "groups/%s/alerts", []string{"groupID"}, anyVariant},
	OpGetAlert:               {http.MethodGet, "groups/%s/alerts/%s", []string{"groupID", "alertID"}, anyVariant},
	OpAcknowledgeAlert:       {http.MethodPatch, "groups/%s/alerts/%s", []string{"groupID", "alertID"}, anyVariant},
	OpGetAlertConfigs:        {http.MethodGet, "groups/%s/alertConfigs", []string{"groupID"}, anyVariant},
	OpGetAlertConfigsByAlert: {http.MethodGet, "groups/%s/alerts/%s/alertConfigs", []string{"groupID", "alertID"}, anyVariant},
	OpGetOpenAlertsByConfig:  {http.MethodGet, "groups/%s/alertConfigs/%s/alerts", []string{"groupID", "alertConfigID"}, anyVariant},
	OpCreateAlertConfig:      {http.MethodPost, "groups/%s/alertConfigs", []string{"groupID"}, anyVariant},
	OpUpdateAlertConfig:      {http.MethodPatch, "groups/%s/alertConfigs/%s", []string{"groupID", "alertConfigID"}, anyVariant},
	OpSetAlertConfigEnabled:  {http.MethodPatch, "groups/%s/alertConfigs/%s", []string{"groupID", "alertConfigID"}, anyVariant},
	OpDeleteAlertConfig:      {http.MethodDelete, "groups/%s/alertConfigs/%s", []string{"groupID", "alertConfigID"}, anyVariant},

	OpGetMaintenanceWindows:   {http.MethodGet, "groups/%s/maintenanceWindows", []string{"groupID"}, OpsManager},
	OpGetMaintenanceWindow:    {http.MethodGet, "groups/%s/maintenanceWindows/%s", []string{"groupID", "windowID"}, OpsManager},
	OpCreateMaintenanceWindow: {http.MethodPost, "groups/%s/maintenanceWindows", []string{"groupID"}, OpsManager},
	OpUpdateMaintenanceWindow: {http.MethodPatch, "groups/%s/maintenanceWindows/%s", []string{"groupID", "windowID"}, OpsManager},
	OpDeleteMaintenanceWindow: {http.MethodDelete, "groups/%s/maintenanceWindows/%s", []string{"groupID", "windowID"}, OpsManager},

	OpGetBackupConfigs:       {http.MethodGet, "groups/%s/backupConfigs", []string{"groupID"}, anyVariant},
	OpGetBackupConfig:        {http.MethodGet, "groups/%s/backupConfigs/%s", []string{"groupID", "clusterID"}, anyVariant},
	OpUpdateBackupConfig:     {http.MethodPatch, "groups/%s/backupConfigs/%s", []string{"groupID", "clusterID"}, anyVariant},
	OpGetSnapshotSchedule:    {http.MethodGet, "groups/%s/backupConfigs/%s/snapshotSchedule", []string{"groupID", "clusterID"}, anyVariant},
	OpUpdateSnapshotSchedule: {http.MethodPatch, "groups/%s/backupConfigs/%s/snapshotSchedule", []string{"groupID", "clusterID"}, anyVariant},

	OpGetSnapshots:   {http.MethodGet, "groups/%s/clusters/%s/snapshots", []string{"groupID", "clusterID"}, anyVariant},
	OpGetSnapshot:    {http.MethodGet, "groups/%s/clusters/%s/snapshots/%s", []string{"groupID", "clusterID", "snapshotID"}, anyVariant},
	OpDeleteSnapshot: {http.MethodDelete, "groups/%s/clusters/%s/snapshots/%s", []string{"groupID", "clusterID", "snapshotID"}, anyVariant},

	OpGetCheckpoints: {http.MethodGet, "groups/%s/clusters/%s/checkpoints", []string{"groupID", "clusterID"}, OpsManager},
	OpGetCheckpoint:  {http.MethodGet, "groups/%s/clusters/%s/checkpoints/%s", []string{"groupID", "clusterID", "checkpointID"}, OpsManager},

	OpGetRestoreJobs:       {http.MethodGet, "groups/%s/clusters/%s/restoreJobs", []string{"groupID", "clusterID"}, anyVariant},
	OpGetRestoreJob:        {http.MethodGet, "groups/%s/clusters/%s/restoreJobs/%s", []string{"groupID", "clusterID", "jobID"}, anyVariant},
	OpCreateRestoreJob:     {http.MethodPost, "groups/%s/clusters/%s/restoreJobs", []string{"groupID", "clusterID"}, anyVariant},
	OpGetHostRestoreJobs:   {http.MethodGet, "groups/%s/hosts/%s/restoreJobs", []string{"groupID", "hostID"}, anyVariant},
	OpGetHostRestoreJob:    {http.MethodGet, "groups/%s/hosts/%s/restoreJobs/%s", []string{"groupID", "hostID", "jobID"}, anyVariant},
	OpCreateHostRestoreJob: {http.MethodPost, "groups/%s/hosts/%s/restoreJobs", []string{"groupID", "hostID"}, anyVariant},

	OpGetUser:          {http.MethodGet, "users/%s", []string{"userID"}, anyVariant},
	OpGetUserByName:    {http.MethodGet, "users/byName/%s", []string{"userName"}, anyVariant},
	OpCreateUser:       {http.MethodPost, "users", nil, anyVariant},
	OpCreateFirstUser:  {http.MethodPost, "unauth/users", nil, OpsManager},
	OpUpdateUser:       {http.MethodPatch, "users/%s", []string{"userID"}, anyVariant},
	OpGetUserWhitelist: {http.MethodGet, "users/%s/whitelist", []string{"userID"}, anyVariant},

	OpGetAutomationConfig:    {http.MethodGet, "groups/%s/automationConfig", []string{"groupID"}, anyVariant},
	OpUpdateAutomationConfig: {http.MethodPut, "groups/%s/automationConfig", []string{"groupID"}, anyVariant},
	OpGetAutomationStatus:    {http.MethodGet, "groups/%s/automationStatus", []string{"groupID"}, anyVariant},

	OpGetHostMetrics:    {http.MethodGet, "groups/%s/hosts/%s/metrics", []string{"groupID", "hostID"}, anyVariant},
	OpGetHostMetric:     {http.MethodGet, "groups/%s/hosts/%s/metrics/%s", []string{"groupID", "hostID", "metricID"}, anyVariant},
	OpGetDeviceMetric:   {http.MethodGet, "groups/%s/hosts/%s/metrics/%s/%s", []string{"groupID", "hostID", "metricID", "deviceName"}, anyVariant},
	OpGetDatabaseMetric: {http.MethodGet, "groups/%s/hosts/%s/metrics/%s/%s", []string{"groupID", "hostID", "metricID", "databaseName"}, anyVariant},
}
