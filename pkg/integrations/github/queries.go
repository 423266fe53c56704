package github

const activityQuery = `query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks { contributionDays { weekday date contributionCount color } }
        months { name year firstDay totalWeeks }
      }
    }
  }
}`

const languagesQuery = `query($login: String!) {
  user(login: $login) {
    repositories(ownerAffiliations: OWNER, isFork: false, first: 100) {
      nodes {
        languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
          edges { size node { name } }
        }
      }
    }
  }
}`

const gistQuery = `query($name: String!) {
  viewer {
    gist(name: $name) {
      description
      stargazerCount
      forks { totalCount }
      owner { login }
      files { name size language { name } }
    }
  }
}`
