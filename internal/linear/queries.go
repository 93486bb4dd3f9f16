/*-------------------------------------------------------------------------
 *
 * Linear MCP - Linear API Client
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package linear

// GraphQL documents sent by the client methods. Field selections must
// stay in lockstep with the structs in types.go.

const issueFields = `
    id
    identifier
    title
    description
    priority
    url
    createdAt
    updatedAt
    state { id name type color }
    assignee { id name displayName }
    team { id name key }
    project { id name }
    labels { nodes { id name color description } }`

const queryViewer = `
query Viewer {
  viewer { id name displayName email active createdAt }
}`

const queryTeams = `
query Teams($first: Int!, $after: String) {
  teams(first: $first, after: $after) {
    nodes { id name key description }
    pageInfo { hasNextPage endCursor }
  }
}`

const queryTeam = `
query Team($id: String!) {
  team(id: $id) { id name key description }
}`

const queryTeamCycles = `
query TeamCycles($teamId: String!, $first: Int!, $after: String) {
  team(id: $teamId) {
    cycles(first: $first, after: $after) {
      nodes { id number name startsAt endsAt progress completedAt team { id name key } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const queryCycle = `
query Cycle($id: String!) {
  cycle(id: $id) { id number name startsAt endsAt progress completedAt team { id name key } }
}`

const queryIssues = `
query Issues($first: Int!, $after: String, $filter: IssueFilter) {
  issues(first: $first, after: $after, filter: $filter) {
    nodes {` + issueFields + `
    }
    pageInfo { hasNextPage endCursor }
  }
}`

const queryIssue = `
query Issue($id: String!) {
  issue(id: $id) {` + issueFields + `
  }
}`

const querySearchIssues = `
query SearchIssues($term: String!, $first: Int!, $after: String) {
  searchIssues(term: $term, first: $first, after: $after) {
    nodes {` + issueFields + `
    }
    pageInfo { hasNextPage endCursor }
  }
}`

const queryIssueComments = `
query IssueComments($issueId: String!, $first: Int!, $after: String) {
  issue(id: $issueId) {
    comments(first: $first, after: $after) {
      nodes { id body url createdAt user { id name displayName } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const queryProjects = `
query Projects($first: Int!, $after: String) {
  projects(first: $first, after: $after) {
    nodes { id name description state progress targetDate url createdAt updatedAt lead { id name displayName } }
    pageInfo { hasNextPage endCursor }
  }
}`

const queryProject = `
query Project($id: String!) {
  project(id: $id) { id name description state progress targetDate url createdAt updatedAt lead { id name displayName } }
}`

const queryUsers = `
query Users($first: Int!, $after: String) {
  users(first: $first, after: $after) {
    nodes { id name displayName email active createdAt }
    pageInfo { hasNextPage endCursor }
  }
}`

const queryUser = `
query User($id: String!) {
  user(id: $id) { id name displayName email active createdAt }
}`

const queryLabels = `
query Labels($first: Int!, $after: String) {
  issueLabels(first: $first, after: $after) {
    nodes { id name color description }
    pageInfo { hasNextPage endCursor }
  }
}`

const queryDocuments = `
query Documents($first: Int!, $after: String) {
  documents(first: $first, after: $after) {
    nodes { id title icon url createdAt updatedAt project { id name } }
    pageInfo { hasNextPage endCursor }
  }
}`

const queryDocument = `
query Document($id: String!) {
  document(id: $id) { id title icon content url createdAt updatedAt project { id name } }
}`

const mutationCreateIssue = `
mutation CreateIssue($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue {` + issueFields + `
    }
  }
}`

const mutationUpdateIssue = `
mutation UpdateIssue($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) {
    success
    issue {` + issueFields + `
    }
  }
}`

const mutationCreateComment = `
mutation CreateComment($input: CommentCreateInput!) {
  commentCreate(input: $input) {
    success
    comment { id body url createdAt user { id name displayName } }
  }
}`
